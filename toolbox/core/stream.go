package core

import (
	"context"
	"iter"
)

// Stream represents a finite flow of events, typically call states. It
// is a higher-level abstraction than channels: each call to Emit starts
// a fresh run of whatever operation produces the events.
type Stream[T any] interface {
	Emit(context.Context) <-chan T

	Collect(context.Context) []T
	All(context.Context) iter.Seq[T]
}

// Emitter represents a function that produces a stream of events of
// type T. It is a level of abstraction over channels, just under
// Stream.
type Emitter[T any] func(context.Context) <-chan T

// Emit adapts a channel-producing function into an Emitter.
func Emit[T any](emitter func(context.Context) <-chan T) Emitter[T] {
	return emitter
}

func (e Emitter[T]) Emit(ctx context.Context) <-chan T {
	return e(ctx)
}

func (e Emitter[T]) Collect(ctx context.Context) []T {
	return Collect(ctx, e)
}

func (e Emitter[T]) All(ctx context.Context) iter.Seq[T] {
	return All(ctx, e)
}

// Collect drains the stream into a slice.
func Collect[T any](ctx context.Context, stream Stream[T]) []T {
	var events []T
	for ev := range stream.Emit(ctx) {
		events = append(events, ev)
	}
	return events
}

// All returns an iterator over the stream's events.
func All[T any](ctx context.Context, stream Stream[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ev := range stream.Emit(ctx) {
			if !yield(ev) {
				return
			}
		}
	}
}

// Last drains the stream and returns its final event. ok is false when
// the stream completed without emitting.
func Last[T any](ctx context.Context, stream Stream[T]) (last T, ok bool) {
	for ev := range stream.Emit(ctx) {
		last = ev
		ok = true
	}
	return last, ok
}
