// Package auth validates operator credentials against the external
// employee directory and issues the signed session tokens checked by the
// auth middleware. Wrong credentials are a normal response, never a 4xx,
// so devices can show the message as-is.
package auth
