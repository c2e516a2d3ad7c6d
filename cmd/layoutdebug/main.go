// Command layoutdebug is a demo CLI over the engine: it builds a small
// fixed tree with the fixtures package and either runs one layout pass
// (`run`) or single-steps the debug driver (`step`), printing geometry as
// it changes.
package main

func main() {
	Execute()
}
