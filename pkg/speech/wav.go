package speech

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

const pcmFormat = 1

func parseWaveHeader(data []byte) (*waveHeader, error) {
	var h waveHeader
	if len(data) < binary.Size(h) {
		return nil, errors.New("invalid WAV header length")
	}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.RiffTag[:]) != "RIFF" || string(h.WaveTag[:]) != "WAVE" || string(h.FmtTag[:]) != "fmt " {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	return &h, nil
}

func (h *waveHeader) isLinear16Mono(rate uint32) bool {
	return h.AudioFormat == pcmFormat && h.NumChannels == 1 && h.SampleRate == rate && h.BitsPerSample == 16
}

// convertToLinear16 shells out to ffmpeg and returns the converted wav bytes.
func convertToLinear16(ctx context.Context, ffmpeg, inputPath string) ([]byte, error) {
	bin, err := exec.LookPath(ffmpeg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFFmpegUnavailable, err)
	}

	out, err := os.CreateTemp("", "planner-converted-*.wav")
	if err != nil {
		return nil, fmt.Errorf("speech: failed to create temp file: %w", err)
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, bin,
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", fmt.Sprint(googleSampleRate),
		outPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("speech: ffmpeg conversion failed: %v: %s", err, stderr.String())
	}

	return os.ReadFile(outPath)
}
