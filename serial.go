// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bseq

import "code.hybscloud.com/atomix"

// Serial identifies a pipe. Each call to NewPipe assigns the next value.
type Serial = uint32

// pipeCounter is the global monotonic counter for pipe serials.
var pipeCounter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return pipeCounter.Add(1)
}
