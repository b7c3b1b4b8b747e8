package sound

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// PCM 把音效渲染成 16 位有符号小端立体声字节
// 格式与 ebiten audio.Context.NewPlayerFromBytes 的输入一致
//
// 返回：
//   - []byte: PCM 数据；未知音效返回 nil
func PCM(e Effect, sampleRate int, volume float64) []byte {
	s := Streamer(e, beep.SampleRate(sampleRate), volume)
	if s == nil {
		return nil
	}
	return render(s)
}

func render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][ch])))
			}
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
