// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Container names used as registry keys.
const (
	FormatWAV    = "wav"
	FormatAIFF   = "aiff"
	FormatMP3    = "mp3"
	FormatVorbis = "ogg vorbis"
)

// sniffLen is the number of leading bytes Sniff needs to tell containers apart.
const sniffLen = 12

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Lengther is implemented by sources that know their length in frames before
// they are fully read. Frames returns -1 when the length is unknown.
type Lengther interface {
	Frames() int64
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Open sniffs the container of rd, picks the registered decoder for it and
// decodes. It returns the detected format key with the source.
// Seekable readers are rewound after sniffing and handed to the decoder as
// is, so decoders that can use Seek (length lookups) still get it.
// Unknown or unregistered containers fail with an error wrapping ErrDecode.
func (r *Registry) Open(rd io.Reader) (Source, string, error) {
	header, body, err := peekHeader(rd)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading header: %w", ErrDecode, err)
	}

	format := Sniff(header)
	if format == "" {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, ErrUnknownFormat)
	}

	d, ok := r.Get(format)
	if !ok {
		return nil, format, fmt.Errorf("%w: no decoder registered for %q", ErrDecode, format)
	}

	src, err := d.Decode(body)
	if err != nil {
		return nil, format, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	return src, format, nil
}

// peekHeader returns the first sniffLen bytes of rd (fewer for short input)
// and a reader that still yields the whole stream.
func peekHeader(rd io.Reader) ([]byte, io.Reader, error) {
	if rs, ok := rd.(io.ReadSeeker); ok {
		start, err := rs.Seek(0, io.SeekCurrent)
		if err == nil {
			header := make([]byte, sniffLen)
			n, rerr := io.ReadFull(rs, header)
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return nil, nil, err
			}
			if n == 0 {
				return nil, nil, rerr
			}

			return header[:n], rs, nil
		}
	}

	br := bufio.NewReader(rd)
	header, err := br.Peek(sniffLen)
	if len(header) == 0 {
		return nil, nil, err
	}

	return header, br, nil
}

// Sniff reports the container format of header, or "" when it is not one of
// the supported containers.
func Sniff(header []byte) string {
	switch {
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return FormatWAV
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return FormatAIFF
	case bytes.HasPrefix(header, []byte("OggS")):
		return FormatVorbis
	case bytes.HasPrefix(header, []byte("ID3")):
		return FormatMP3
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return FormatMP3
	}

	return ""
}
