// File: internal/access/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free index management for single-producer/single-consumer ring
// buffers. The Manager tracks read/write positions for a caller-owned
// slot array of fixed capacity; it never touches the slots themselves.
//
// Empty/full disambiguation is counter-based: the manager keeps two
// monotonic 64-bit counters instead of wrapped indices, so all dim
// slots are usable and rd == wr is unambiguous (empty iff the counters
// are equal, full iff they differ by dim). Wrapped indices are derived
// on demand.
package access
