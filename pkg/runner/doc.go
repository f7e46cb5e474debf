/*
Package runner implements the input loop and console I/O for a dialog session.

It acts as the bridge between the session controller and the outside world:
handlers present nodes and read raw input, and the Runner turns that input into
choices, re-prompting on invalid ones.

# Key Components

  - Runner: reads choices until EOF, an exit word, or cancellation.
  - IOHandler: a Presenter that can also read input and show system messages.
  - TextHandler: framed console output and a "> " prompt.
  - JSONHandler: NDJSON output and input for scripted use.

# Usage

	handler := runner.NewTextHandler(os.Stdin, os.Stdout)
	ctrl, err := dialogtree.New(store, handler)
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(runner.WithInputHandler(handler))
	if err := r.Run(ctx, ctrl); err != nil {
		log.Fatal(err)
	}
*/
package runner
