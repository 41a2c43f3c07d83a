// Command wadinfo inspects the lumps, levels and graphics of a Doom WAD archive.
package main

func main() {
	execute()
}
