package game

// Recorder receives intermediate boards while a move is applied.
// Implementations must copy the board if they keep it.
type Recorder interface {
	Record(b Board)
}

// SnapshotRecorder keeps every recorded board, e.g. for animating a move.
type SnapshotRecorder struct {
	snapshots []Board
}

func NewSnapshotRecorder() *SnapshotRecorder {
	return &SnapshotRecorder{}
}

func (r *SnapshotRecorder) Record(b Board) {
	r.snapshots = append(r.snapshots, b.Copy())
}

func (r *SnapshotRecorder) Snapshots() []Board {
	return r.snapshots
}

func (r *SnapshotRecorder) Reset() {
	r.snapshots = nil
}

type noRecorder struct{}

func (noRecorder) Record(Board) {}
