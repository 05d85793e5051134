// Package task defines the to-do task model and its in-memory store.
package task

// SeedName is the name of the task every new store starts with.
const SeedName = "Sample Task"

// Task is a single to-do entry.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}
