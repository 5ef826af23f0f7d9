// Package strarray provides a growable, index-addressable array of owned
// strings.
//
// An [Array] is created with an explicit initial capacity and doubles its
// slot storage whenever an insertion finds it full. It never shrinks.
//
//   - [Array.Read]: element at an index, or [ErrIndexOutOfRange]
//   - [Array.Insert]: store a private copy at an index, shifting right
//   - [Array.Append]: Insert at the end
//   - [Array.Remove]: drop the first equal element, shifting left
//   - [Array.Print]: bracketed, comma-separated rendering
//
// # Errors
//
// Read and Remove report lookup misses as error values. Insert and Append
// treat an index outside [0, Len()] as a broken caller contract and panic
// with an [*IndexError] whose Fatal field is set.
//
// # Example
//
//	arr, _ := strarray.New(1)
//	arr.Insert("STRING1", 0)
//	arr.Append("STRING4")
//	arr.Print(os.Stdout) // [STRING1,STRING4]
//
// # Thread Safety
//
// Array instances are NOT thread-safe. Callers sharing one across
// goroutines must serialize access themselves.
package strarray
