package beamgrid

var (
	Debug = false // set to true for verbose debug output and the per-beam event log
)
