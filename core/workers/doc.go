// Package workers provides the bounded pool that runs transfers.
//
// One Pool is shared by every transfer issued through a facade instance. Submit hands a
// function to the pool and returns a Task; Task.Wait blocks the caller until that one task
// finishes or the caller's context ends, in which case the task is cancelled. Other tasks are
// unaffected.
//
// ShutdownNow cancels all in-flight tasks and refuses new ones without waiting for anything
// to drain.
package workers
