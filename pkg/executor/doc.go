// Package executor provides execution contexts for post office deliveries.
//
// Every type implements Submit(func()), which is the postoffice.Executor
// interface, and can be attached to a registration with
// postoffice.WithExecutor:
//
//   - Inline runs work in the submitting goroutine.
//   - Goroutine starts one goroutine per work item.
//   - Serial runs work one at a time in submission order.
//   - Pool runs work concurrently up to a limit (golang.org/x/sync/errgroup).
//   - Channel hands work to a loop owned by the caller and drops it when the
//     buffer is full.
//
// Panics raised by work are recovered and logged by every executor except
// Inline. Executors with background goroutines expose Close(ctx), which stops
// accepting work and waits for pending work; work submitted afterwards is
// dropped and logged.
//
//	serial := executor.NewSerial(executor.WithLogger(log))
//	defer serial.Close(ctx)
//
//	postoffice.Register(po, onSaved, postoffice.WithExecutor(serial))
package executor
