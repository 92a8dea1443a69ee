// Package flatten implements the module-layout migration that moves Rust
// mod.rs files to sibling-named files one directory level up, resolving
// target conflicts without ever overwriting existing data.
package flatten
