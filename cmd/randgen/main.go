// randgen prints pseudo-random integers drawn from an MT19937 generator.
package main

import "randgen/cmd/randgen/app"

func main() {
	app.New("randgen").Run()
}
