// Command vecctl exercises the vector package: it runs functionality checks
// against a chosen allocator and times common operations against a built-in
// slice.
package main

func main() {
	execute()
}
