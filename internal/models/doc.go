// Package models defines the in-memory domain entities for the HR tools.
//
//   - [Person] : a participant with a stable ID and a display name
//   - [Group] : a generated team of people with a display label
//   - [Mode] : which tool (draw or group) the coordinator is showing
//
// Rosters are plain []Person slices. Nothing here is persisted.
package models
