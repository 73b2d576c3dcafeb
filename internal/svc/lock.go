package svc

import "sync"

var petLocks sync.Map

// LockPet acquires the mutex for one pet and returns its release func. Every
// read-modify-write of a pet record (hatch, feed, admin override, cocoon
// finalization, decay sweep) runs under this lock, so a gin handler and the
// decay scheduler can never interleave load and save on the same record.
func LockPet(ownerId, petName string) func() {
	mu, _ := petLocks.LoadOrStore(ownerId+"\x00"+petName, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
