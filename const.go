package rsdict

const (
	// SmallBlockSize is the number of bits coded together as one class and code.
	SmallBlockSize = 64
	// LargeBlockSize is the number of bits between rank checkpoints.
	LargeBlockSize = 1024
	// SmallBlockPerLargeBlock is the number of small blocks in a large block.
	SmallBlockPerLargeBlock = LargeBlockSize / SmallBlockSize
	// SelectBlockSize is the number of ones (resp. zeros) between select samples.
	SelectBlockSize = 4096
)
