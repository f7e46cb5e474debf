/*
Package ports defines the interfaces between the dialog core and its adapters.

These interfaces decouple the session controller from content sources, display
and persistence, so each can be swapped without touching the core.

# Key Interfaces

  - NodeStore: resolves node IDs to nodes (Memory, Files, Loam, SQLite).
  - Presenter: displays a node (text console, NDJSON).
  - StateStore: checkpoints the current node ID of a session (Memory, Files, Redis).
  - Navigator: the driving port used by the input loop.
*/
package ports
