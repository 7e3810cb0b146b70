package biometric

import "errors"

var (
	// ErrCaptureCancelled is returned by capture collaborators when the user
	// aborts a capture or the context is cancelled.
	ErrCaptureCancelled = errors.New("capture cancelled")

	// ErrNoFaceDetected is returned by a [FaceEncoder] when the image holds
	// no face. The access gate turns it into a face mismatch.
	ErrNoFaceDetected = errors.New("no face detected")

	// ErrDimensionMismatch is returned when two embeddings of different
	// length are compared.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrZeroVector is returned when cosine similarity is requested for an
	// embedding with zero norm.
	ErrZeroVector = errors.New("zero-norm embedding")

	// ErrEmptyEmbedding is returned when an embedding has no components.
	ErrEmptyEmbedding = errors.New("empty embedding")
)
