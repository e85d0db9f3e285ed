// Package voc reads playback information from Creative Voice (VOC) data.
//
// The data may start with the 26 byte file header or directly with the
// first data block.
package voc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

const signature = "Creative Voice File\x1a"

var ErrNotVoc = errors.New("not creative voice data")

// Block types.
const (
	blockTerminator   = 0
	blockSoundData    = 1
	blockContinuation = 2
	blockSilence      = 3
	blockMarker       = 4
	blockText         = 5
	blockRepeatStart  = 6
	blockRepeatEnd    = 7
	blockExtended     = 8
	blockSoundDataNew = 9
)

// Info describes the playback of the sound data.
type Info struct {
	// Frequency is the sample rate of the first sound block in Hz.
	Frequency int
	Channels  int
	Duration  time.Duration
}

type format struct {
	rate           int
	channels       int
	samplesPerByte float64
}

func (f format) duration(n int) time.Duration {
	if f.rate <= 0 || f.channels <= 0 {
		return 0
	}
	samples := float64(n) * f.samplesPerByte / float64(f.channels)
	return time.Duration(samples / float64(f.rate) * float64(time.Second))
}

// Inspect returns playback information of VOC data.
func Inspect(data []byte) (*Info, error) {
	blocks, err := stripHeader(data)
	if err != nil {
		return nil, err
	}

	var info Info
	var current format
	var extended *format
	found := false

	for len(blocks) > 0 {
		blockType := blocks[0]
		if blockType == blockTerminator {
			break
		}
		if blockType > blockSoundDataNew {
			return nil, fmt.Errorf("%w: unknown block type %d", ErrNotVoc, blockType)
		}
		if len(blocks) < 4 {
			return nil, fmt.Errorf("%w: truncated block header", ErrNotVoc)
		}
		size := int(blocks[1]) | int(blocks[2])<<8 | int(blocks[3])<<16
		if len(blocks)-4 < size {
			return nil, fmt.Errorf("%w: block type %d needs %d bytes, %d left", ErrNotVoc, blockType, size, len(blocks)-4)
		}
		body := blocks[4 : 4+size]
		blocks = blocks[4+size:]

		switch blockType {
		case blockSoundData:
			if size < 2 {
				return nil, fmt.Errorf("%w: sound data block too short", ErrNotVoc)
			}
			if extended != nil {
				current = *extended
				extended = nil
			} else {
				current = format{
					rate:     1000000 / (256 - int(body[0])),
					channels: 1,
				}
			}
			current.samplesPerByte = samplesPerByte(body[1])
			info.Duration += current.duration(size - 2)
		case blockContinuation:
			info.Duration += current.duration(size)
		case blockSilence:
			if size < 3 {
				return nil, fmt.Errorf("%w: silence block too short", ErrNotVoc)
			}
			samples := int(binary.LittleEndian.Uint16(body)) + 1
			rate := 1000000 / (256 - int(body[2]))
			info.Duration += time.Duration(float64(samples) / float64(rate) * float64(time.Second))
			continue
		case blockExtended:
			if size < 4 {
				return nil, fmt.Errorf("%w: extended block too short", ErrNotVoc)
			}
			timeConstant := int(binary.LittleEndian.Uint16(body))
			channels := int(body[3]) + 1
			extended = &format{
				rate:     256000000 / (channels * (65536 - timeConstant)),
				channels: channels,
			}
			continue
		case blockSoundDataNew:
			if size < 12 {
				return nil, fmt.Errorf("%w: sound data block too short", ErrNotVoc)
			}
			bits := int(body[4])
			channels := int(body[5])
			if bits == 0 || channels == 0 {
				return nil, fmt.Errorf("%w: %d bits, %d channels", ErrNotVoc, bits, channels)
			}
			current = format{
				rate:           int(binary.LittleEndian.Uint32(body)),
				channels:       channels,
				samplesPerByte: 8 / float64(bits),
			}
			info.Duration += current.duration(size - 12)
		default:
			// Markers, text and repeat loops carry no sound.
			continue
		}

		if !found {
			found = true
			info.Frequency = current.rate
			info.Channels = current.channels
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no sound data block", ErrNotVoc)
	}
	return &info, nil
}

func stripHeader(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, []byte(signature)) {
		return data, nil
	}
	if len(data) < 26 {
		return nil, fmt.Errorf("%w: truncated file header", ErrNotVoc)
	}
	headerSize := int(binary.LittleEndian.Uint16(data[20:22]))
	if headerSize < 26 || headerSize > len(data) {
		return nil, fmt.Errorf("%w: invalid header size %d", ErrNotVoc, headerSize)
	}
	return data[headerSize:], nil
}

// samplesPerByte returns the number of samples packed into one byte by a codec.
func samplesPerByte(codec byte) float64 {
	switch codec {
	case 1: // 4 bit ADPCM
		return 2
	case 2: // 2.6 bit ADPCM
		return 3
	case 3: // 2 bit ADPCM
		return 4
	default: // 8 bit PCM
		return 1
	}
}
