// Package admin exposes the shared activity journal to operators.
package admin
