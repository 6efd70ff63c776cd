// Package core defines the shared types used across the Logger library.
//
// It provides the Level type (the totally ordered severity scale with its
// 3-letter short codes and coarse Category mapping), the Entry type that
// represents a single log event on its way through a dispatch, and the
// QueryCommand payload shape for logging parameterized database commands.
//
// Entry objects are pooled via sync.Pool to keep the dispatch path
// allocation-free. The registry gets an Entry with GetEntry and returns it
// with PutEntry once every destination has consumed it and the history
// append is done.
//
// Identity returns the process identity (executable name, host name, user
// name) resolved exactly once; identity-aware destinations attach it to
// every row or message they emit.
package core
