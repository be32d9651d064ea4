// Package eksblowfish 实现bcrypt使用的"昂贵密钥编排"(Expensive Key
// Schedule)：把密钥和/或盐混入一份blowfish.State的三个expand-state算子，
// 以及驱动它们的密钥循环器。这一层不知道工作因子或盐的编码方式，
// 只负责按规范原地修改状态；bcrypt包负责编排调用顺序。
package eksblowfish

import "github.com/eksblf/ekscrypt/blowfish"

// keyCycle 是一个无限的密钥字节产生器：key[0], key[1], ..., key[n-1],
// 0x00, key[0], ...。密钥每被完整读完一遍后插入一个NUL字节。
// 空密钥产生无限的0x00流。
type keyCycle struct {
	key []byte
	pos int
}

func (c *keyCycle) next() byte {
	if c.pos == len(c.key) {
		c.pos = 0
		return 0
	}
	b := c.key[c.pos]
	c.pos++
	return b
}

func (c *keyCycle) nextWord() uint32 {
	return uint32(c.next())<<24 | uint32(c.next())<<16 | uint32(c.next())<<8 | uint32(c.next())
}

// ExpandKey 把key循环器产生的18个大端字依次XOR进state.P，
// S盒不受影响。每次调用都从循环器的起始位置重新开始，
// 因此总是从key流中消费72字节(18*4)的前缀。
func ExpandKey(st *blowfish.State, key []byte) {
	c := keyCycle{key: key}
	for i := range st.P {
		st.P[i] ^= c.nextWord()
	}
}

// ExpandData 用一个128位的盐(四个大端字)重新派生P盒与S盒：维护一对
// 运行中的字(l, r)，每次encipher前把盐字XOR进去，然后用encipher的
// 结果覆盖P/S盒中的对应位置。P盒遍历用data[i%4]/data[i%4+1]作为盐
// 下标；S盒遍历改用data[(k+2)%4]/data[(k+2)%4+1]——这个+2的偏移量
// 是OpenBSD参考实现的一部分，对测试向量的兼容性是必需的，不能省略。
func ExpandData(st *blowfish.State, data [4]uint32) {
	var l, r uint32

	for i := 0; i < blowfish.PWords; i += 2 {
		idx := i % 4
		l ^= data[idx]
		r ^= data[idx+1]
		l, r = st.Encipher(l, r)
		st.P[i], st.P[i+1] = l, r
	}

	for s := 0; s < blowfish.SBoxCount; s++ {
		for k := 0; k < blowfish.SWords; k += 2 {
			idx := (k + 2) % 4
			l ^= data[idx]
			r ^= data[idx+1]
			l, r = st.Encipher(l, r)
			st.S[s][k], st.S[s][k+1] = l, r
		}
	}
}

// ExpandData0 与ExpandData完全相同，只是不对(l, r)做任何外部数据的
// XOR——相当于隐式地使用全零的数据块。
func ExpandData0(st *blowfish.State) {
	var l, r uint32

	for i := 0; i < blowfish.PWords; i += 2 {
		l, r = st.Encipher(l, r)
		st.P[i], st.P[i+1] = l, r
	}

	for s := 0; s < blowfish.SBoxCount; s++ {
		for k := 0; k < blowfish.SWords; k += 2 {
			l, r = st.Encipher(l, r)
			st.S[s][k], st.S[s][k+1] = l, r
		}
	}
}
