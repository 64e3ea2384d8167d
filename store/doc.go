// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the editable menu aggregate and its mutation operations.

# Invariants

  - Each course section always has at least one entry. Remove operations
    that would empty a section fail with ErrMinCourses; the guard lives here,
    not in the caller, so headless use stays safe.
  - The language is always "es" or "ro".
  - Empty dish names are allowed in the store; consumers filter them.

# Persistence

Every successful mutation is written through to the menu_state table under
the fixed key "menu" before it becomes visible. New loads the last snapshot
at startup and substitutes defaults for missing fields or a snapshot written
by an unknown schema version.

# Snapshots

State returns a deep copy. Mutations build a fresh copy, so two snapshots
taken around a mutation never alias each other.
*/
package store
