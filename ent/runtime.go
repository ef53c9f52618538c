// Code generated by ent, DO NOT EDIT.

package ent

// The schema-stitching logic is generated in versus-arena.io/arena/ent/runtime/runtime.go
