// Package shopping implements the list/edit state engine: the category store,
// the keyword classifier, the edit/delete controller, the bulk importer, the
// snapshot manager, and the Session that ties them together behind one lock.
//
// The engine never renders anything. Every Session command applies a single
// mutation and returns a types.View the UI layer redraws from.
package shopping
