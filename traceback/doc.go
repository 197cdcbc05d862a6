// Package traceback enumerates every co-optimal alignment recorded in a
// filled dpgrid.Grid. It walks the back-pointer DAG with an explicit stack
// rather than recursion, so a pull from Next can stop after a fixed-size
// chunk and resume later without unwinding or re-deriving prior state.
package traceback
