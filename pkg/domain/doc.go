/*
Package domain contains the core models of the dialog tree navigator.

It defines the entities of the dialog graph and the session, and the typed
errors the engine reports. This package is kept pure and free of external
dependencies like I/O or persistence.

# Key Entities

  - Node: a point in the graph with display text and an ordered list of options.
  - Option: one outgoing choice, referencing the next node by ID.
  - State: the current node ID of a session.
  - LifecycleHooks: callbacks fired on node entry and on accepted/rejected choices.
*/
package domain
