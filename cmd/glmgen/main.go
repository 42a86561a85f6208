// SPDX-License-Identifier: MIT

// Command glmgen writes the generated sources of lvglm: the swizzle view
// accessors and the method sets and aliases of the glm vector and matrix
// types.
//
// Usage:
//
//	glmgen -kind views|vectors|matrices|aliases [-o file]
//
// Without -o the source is written to standard output. It is normally run
// through the go:generate directives in packages swizzle and glm.
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("glmgen: ")

	kind := flag.String("kind", "", "file to generate: views, vectors, matrices or aliases")
	out := flag.String("o", "", "output file (default standard output)")
	flag.Parse()

	src, err := generate(*kind)
	if err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		if _, err = os.Stdout.Write(src); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err = os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(src))
}
