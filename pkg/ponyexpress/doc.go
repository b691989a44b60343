// Package ponyexpress routes letters by name.
//
// An Express[C] delivers Letter[C] values, each carrying a name, an optional
// sender and contents of type C, to the observers added under that name.
// Observers are either functions added with Add or Recipient values added
// with AddRecipient; the latter are held weakly and disappear on their own
// once collected.
//
//	x := ponyexpress.New[Payload]()
//	x.Add("day-changed", func(l ponyexpress.Letter[Payload]) { ... })
//	x.Post("day-changed", nil, Payload{Keys: []int{12, 13}})
//
// WithQueue hands deliveries to a postoffice.Executor, for example one from
// package executor.
package ponyexpress
