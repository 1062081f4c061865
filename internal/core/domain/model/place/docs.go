// Package place contains the catalog entities deliveries refer to:
// hospitals (dispatch origins) and villages (destinations).
package place
