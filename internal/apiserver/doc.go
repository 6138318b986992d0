// Package apiserver exposes solve, verify and schedule over HTTP,
// structured the way the reference forensics engine's internal/api
// package does: an APIHandler struct holding its dependencies and a
// SetupRouter constructor that wires routes onto a *gin.Engine. Requests
// and responses are JSON carrying canonical text (pathfmt). Only
// POST /v1/solve also answers with the deterministic binary encoding
// from internal/wire when the client sends Accept: application/cbor;
// verify and schedule always answer in JSON.
package apiserver
