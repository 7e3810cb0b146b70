package crypto

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCipher(t *testing.T) (CipherManager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secret.key")
	c := NewCipherManager(NewFileKeyStore(path), logger.Nop())
	require.NoError(t, c.InitializeOrLoad())
	return c, path
}

// ── Encrypt / Decrypt ────────────────────────────────────────────────────────

func TestCipher_RoundTrip(t *testing.T) {
	c, _ := newTestCipher(t)

	for _, plain := range [][]byte{
		[]byte("hello"),
		{},
		bytes.Repeat([]byte{0xAB}, 1<<16),
	} {
		blob, err := c.Encrypt(plain)
		require.NoError(t, err)
		assert.Equal(t, blobVersion, blob[0])
		assert.Len(t, blob, 1+nonceSize+len(plain)+tagSize)

		got, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plain, got))
	}
}

func TestCipher_FreshNoncePerCall(t *testing.T) {
	c, _ := newTestCipher(t)

	a, err := c.Encrypt([]byte("same"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestCipher_BitFlip flips one bit in every region of the blob: version,
// nonce, body and tag.
func TestCipher_BitFlip(t *testing.T) {
	c, _ := newTestCipher(t)
	blob, err := c.Encrypt([]byte("top secret payload"))
	require.NoError(t, err)

	for _, pos := range []int{0, 1, nonceSize, nonceSize + 3, len(blob) - 1} {
		tampered := bytes.Clone(blob)
		tampered[pos] ^= 0x01

		got, err := c.Decrypt(tampered)
		assert.ErrorIs(t, err, ErrDecryption, "position %d", pos)
		assert.Nil(t, got)
	}
}

func TestCipher_Truncated(t *testing.T) {
	c, _ := newTestCipher(t)
	blob, err := c.Encrypt([]byte("payload"))
	require.NoError(t, err)

	for _, n := range []int{0, 1, 1 + nonceSize, len(blob) - 1} {
		_, err := c.Decrypt(blob[:n])
		assert.ErrorIs(t, err, ErrDecryption, "length %d", n)
	}
}

func TestCipher_WrongKey(t *testing.T) {
	a, _ := newTestCipher(t)
	b, _ := newTestCipher(t)

	blob, err := a.Encrypt([]byte("payload"))
	require.NoError(t, err)

	_, err = b.Decrypt(blob)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCipher_NotInitialized(t *testing.T) {
	c := NewCipherManager(NewFileKeyStore(filepath.Join(t.TempDir(), "k")), logger.Nop())

	_, err := c.Encrypt([]byte("x"))
	assert.ErrorIs(t, err, ErrKeyNotInitialized)
	_, err = c.Decrypt([]byte("x"))
	assert.ErrorIs(t, err, ErrKeyNotInitialized)
}

// ── InitializeOrLoad ─────────────────────────────────────────────────────────

// TestInitializeOrLoad_PersistsOnce verifies a second manager over the same
// key file loads the same key instead of generating a new one.
func TestInitializeOrLoad_PersistsOnce(t *testing.T) {
	first, path := newTestCipher(t)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	second := NewCipherManager(NewFileKeyStore(path), logger.Nop())
	require.NoError(t, second.InitializeOrLoad())
	require.NoError(t, second.InitializeOrLoad())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	blob, err := first.Encrypt([]byte("cross"))
	require.NoError(t, err)
	got, err := second.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("cross"), got)
}

func TestInitializeOrLoad_MalformedKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	require.NoError(t, os.WriteFile(path, []byte("not base64 at all!!"), 0o600))

	err := NewCipherManager(NewFileKeyStore(path), logger.Nop()).InitializeOrLoad()
	assert.ErrorIs(t, err, ErrKeyStorage)
}

func TestInitializeOrLoad_ShortKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ks := mock.NewMockKeyStore(ctrl)
	ks.EXPECT().Load().Return(make([]byte, 16), nil)

	err := NewCipherManager(ks, logger.Nop()).InitializeOrLoad()
	assert.ErrorIs(t, err, ErrKeyStorage)
}

func TestInitializeOrLoad_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ks := mock.NewMockKeyStore(ctrl)
	ks.EXPECT().Load().Return(nil, errors.New("permission denied"))

	err := NewCipherManager(ks, logger.Nop()).InitializeOrLoad()
	assert.ErrorIs(t, err, ErrKeyStorage)
}

// TestInitializeOrLoad_LosesCreateRace verifies that a key created
// concurrently by someone else is loaded instead of overwritten.
func TestInitializeOrLoad_LosesCreateRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	theirs := bytes.Repeat([]byte{7}, KeySize)

	ks := mock.NewMockKeyStore(ctrl)
	gomock.InOrder(
		ks.EXPECT().Load().Return(nil, ErrKeyNotFound),
		ks.EXPECT().Create(gomock.Any()).Return(ErrKeyExists),
		ks.EXPECT().Load().Return(theirs, nil),
	)

	require.NoError(t, NewCipherManager(ks, logger.Nop()).InitializeOrLoad())
}

func TestInitializeOrLoad_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ks := mock.NewMockKeyStore(ctrl)
	ks.EXPECT().Load().Return(nil, ErrKeyNotFound)
	ks.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	err := NewCipherManager(ks, logger.Nop()).InitializeOrLoad()
	assert.ErrorIs(t, err, ErrKeyStorage)
}
