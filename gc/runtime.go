package gc

// Run executes work with the default collector's sweep loop running. See
// (*Collector).Run.
func Run(work func() int) int {
	return Default().Run(work)
}

// Run bookends work with a background sweep loop: start the loop, execute
// work on the calling goroutine, then stop the loop and wait for its final
// sweep before returning work's status. Stop happens however work ends,
// panics included.
//
// Every tracked object whose last external owner was released before work
// completed is reclaimed by the time Run returns. Objects in reference
// cycles with other handle-holding objects are the one exception; they are
// never reclaimed.
func (c *Collector) Run(work func() int) int {
	s := NewSweeper(c)
	s.Start()
	defer s.Stop()
	return work()
}
