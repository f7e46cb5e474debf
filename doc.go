/*
Package dialogtree is a minimal branching dialog navigator.

A dialog is a graph of nodes. Each node has display text and an ordered list of
options, and each option points at another node by ID. The Controller keeps the
ID of the current node, presents it, and advances when the user picks an option
by its zero-based index.

# Architecture

The controller only talks to ports: a NodeStore resolves node IDs (memory,
YAML/JSON files, a Loam markdown repository, SQLite), a Presenter displays nodes
(text console, NDJSON), and an optional StateStore checkpoints the current node ID
(memory, files, Redis). The runner package drives the read-choice loop.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/dialogtree"
		"github.com/aretw0/dialogtree/pkg/adapters/memory"
		"github.com/aretw0/dialogtree/pkg/runner"
	)

	func main() {
		store, err := memory.NewFromNodes(memory.SampleNodes()...)
		if err != nil {
			log.Fatal(err)
		}

		handler := runner.NewTextHandler(os.Stdin, os.Stdout)
		ctrl, err := dialogtree.New(store, handler, dialogtree.WithStartNode("d0"))
		if err != nil {
			log.Fatal(err)
		}

		r := runner.NewRunner(runner.WithInputHandler(handler))
		if err := r.Run(context.Background(), ctrl); err != nil {
			log.Fatal(err)
		}
	}

Invalid choices (out-of-range indices) are reported with an error matching
domain.ErrOptionDoesNotExist and never move the session. A missing node yields
domain.ErrNodeNotFound and ends the run.
*/
package dialogtree
