// Package store keeps the client-side copy of server state for the admin
// views.
//
// Collection[T] is the shared container: a list of entities, an optional
// selected entity, a loading flag and the last error message. DialogStore,
// ProfileStore and StoryStore embed it and expose one method per action.
//
// Every action follows the same contract:
//
//  1. Fetch actions raise the loading flag.
//  2. The service call runs without holding the state lock.
//  3. On success the store reconciles: creates append, updates replace the
//     list element and the selection wholesale with the server's copy,
//     deletes filter the list and clear a matching selection. Nested
//     children follow the per-operation Policies table.
//  4. On failure nothing is reconciled, a fixed message is stored in Error
//     and an *ActionError wrapping the cause is returned.
//  5. The loading flag is cleared whatever the outcome.
//
// Loading is a single boolean per store. Overlapping actions race it and
// the last one to settle wins.
//
// Views read state through Snapshot, which returns deep copies.
package store
