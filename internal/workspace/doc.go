// Package workspace reconciles Plastic SCM workspaces against requested
// (path, selector) pairs.
//
// A reconciliation call loads the client's full workspace table, destroys
// workspaces that overlap the target path (a binding on the parent
// directory, or bindings nested directly inside the target), then reuses,
// reselects, updates, or creates the workspace at the target:
//
//	mgr := workspace.NewManager(tool, system.DefaultFS())
//	wk, err := mgr.Checkout(ctx, "/build/job42", "rep:default br:/main", true)
//
// The registry is loaded fresh per call and owned by that call alone;
// nothing is cached across invocations. Calls against the same path must
// be serialized by the caller.
//
// Selector classification (branch vs. fixed point) is advisory: it decides
// whether an unchanged selector warrants an incremental update, and any
// classification failure degrades to "not a branch" rather than failing
// the checkout.
package workspace
