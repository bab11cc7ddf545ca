// Package models defines the core domain models for Pulse.
//
// # Models
//
//   - Habit: a daily habit with its set of completed days and cached streak
//   - Goal: a dated goal a habit may weakly reference for display
//   - User: a registered account owning habits and goals
//
// # Design Principles
//
// 1. **Completion days are canonical strings**: every completed day is a
// "YYYY-MM-DD" key produced by the datekey package, never a raw timestamp.
// 2. **Cached streak is derived, not authoritative**: Habit.Streak mirrors
// what the engine computes from CompletedDates and is recomputed on every
// mutation of the set.
// 3. **Avoid circular references**: habits hold a Goal ID string, not a Goal
// pointer. A deleted goal leaves a dangling ID that resolves to a "no goal
// linked" display value.
// 4. **Single owner**: every habit and goal belongs to exactly one user.
package models
