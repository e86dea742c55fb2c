// Package kit defines the drum kit: the static layout table, the pad model with its category
// rule, the key-indexed registry and the scene builder that turns the layout into meshes.
package kit
