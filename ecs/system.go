package ecs

// System is a routine the world runs once per tick. It receives the world,
// from which it borrows the columns it needs, and the shared application
// context passed to Tick. Handles acquired by a system are released when it
// returns.
type System[C any] func(w *World[C], ctx *C)
