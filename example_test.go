// SPDX-License-Identifier: EPL-2.0

package landauloop_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/landauloop"
	"github.com/ik5/landauloop/compose"
	"github.com/ik5/landauloop/formats/wav"
	"github.com/ik5/landauloop/landau"
	"github.com/ik5/landauloop/utils"
)

// Example_basicUsage decodes a 5-second clip and extends it to its
// Landau period of 6 seconds.
func Example_basicUsage() {
	// Build a 5-second mono WAV in memory for demonstration.
	const rate = 8000
	samples := make([]int16, rate*5)
	wavData := new(bytes.Buffer)
	if err := wav.WritePCM16(wavData, rate, 1, samples); err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}

	src, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	out, res, err := landauloop.Extend(src, landauloop.Options{})
	if err != nil {
		fmt.Printf("extend error: %v\n", err)
		return
	}

	fmt.Printf("partition: %v\n", res.Partition)
	fmt.Printf("g(5) = %d\n", res.LCM)
	fmt.Printf("output: %d seconds\n", len(out.Data)/out.Channels/out.Rate)
	// Output:
	// partition: [3 2]
	// g(5) = 6
	// output: 6 seconds
}

// Example_writingResult shows encoding an extended buffer back to WAV.
func Example_writingResult() {
	const rate = 4000
	samples := make([]int16, rate*5)
	wavData := new(bytes.Buffer)
	wav.WritePCM16(wavData, rate, 1, samples)

	src, _ := wav.Decoder{}.Decode(wavData)
	out, _, err := landauloop.Extend(src, landauloop.Options{})
	if err != nil {
		fmt.Printf("extend error: %v\n", err)
		return
	}

	encoded := new(bytes.Buffer)
	err = wav.WritePCM16(encoded, out.Rate, out.Channels, utils.Float32SliceToInt16(out.Data))
	if err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}

	fmt.Printf("wrote %d bytes\n", encoded.Len())
	// Output: wrote 48044 bytes
}

// Example_partitionOnly computes the optimal partition without touching
// any audio.
func Example_partitionOnly() {
	res, err := landau.Optimize(12)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("g(12) = %d via %v\n", res.LCM, res.Partition)
	// Output: g(12) = 60 via [5 4 3]
}

// Example_orderingPolicy loops a clip with the segments laid out in
// ascending order instead of the default descending.
func Example_orderingPolicy() {
	const rate = 2000
	samples := make([]int16, rate*5)
	wavData := new(bytes.Buffer)
	wav.WritePCM16(wavData, rate, 1, samples)

	src, _ := wav.Decoder{}.Decode(wavData)
	_, res, err := landauloop.Extend(src, landauloop.Options{
		Compose: compose.Options{Order: compose.OrderAscending},
	})
	if err != nil {
		fmt.Printf("extend error: %v\n", err)
		return
	}

	fmt.Printf("partition: %v\n", res.Partition)
	// Output: partition: [3 2]
}
