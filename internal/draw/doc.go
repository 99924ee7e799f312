// Package draw implements the prize draw as a small state machine.
//
// # States
//
//	Idle ──Start──▶ Drawing ──(final Tick)──▶ Result ──Start──▶ Drawing
//	  ▲                                                  │
//	  └──────────────── Reset / SetRoster ───────────────┘
//
// A draw spans a fixed number of ticks (30 by default). Every tick samples a cosmetic index for the
// cycling display; those samples come from a separate source and never affect the outcome. The final
// tick performs the binding selection, a single uniform pick from the pool as it stands at that moment.
//
// When duplicates are disallowed the winner leaves the pool, so K draws exhaust a pool of K people
// and the next [Engine.Start] is a no-op.
//
// # Driving a draw
//
// Interactive callers (the TUI) call [Engine.Start] and then [Engine.Tick] on their own timer.
// [Engine.Run] does both, pacing ticks with a rate limiter and emitting [ProgressUpdate] values on a
// non-blocking channel.
package draw
