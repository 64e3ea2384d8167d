// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation.

A single menu_state table holds one JSON snapshot per namespace key. The
server uses the fixed key "menu"; the snapshot survives restarts the way the
browser-local storage of the old frontend survived reloads.

The DDL uses only syntax accepted by both SQLite and PostgreSQL, matching
the two drivers the server can be started with.
*/
package db
