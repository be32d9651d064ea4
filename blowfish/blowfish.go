// Package blowfish 实现Blowfish分组密码的核心原语：Feistel轮函数、
// 64位分组的encipher过程，以及由pi的十六进制小数位导出的初始P盒/S盒常量。
// 本包只提供EksBlowfish密钥编排需要的底层原语，不提供完整的
// cipher.Block接口或任何分组工作模式——那些都由更高层的包负责。
package blowfish

import "github.com/eksblf/ekscrypt/blowfish/internal"

const (
	// Rounds 是Feistel网络的轮数。
	Rounds = 16
	// PWords 是P盒的字数。
	PWords = 18
	// SBoxCount 是S盒的个数。
	SBoxCount = 4
	// SWords 是每个S盒的字数。
	SWords = 256
)

// State 是一份可变的Blowfish密钥编排状态：P盒与四个S盒。
// 零值不是合法状态；合法状态只能通过Initial创建，随后由
// eksblowfish包中的expand-state算子原地修改。State按值传递时会
// 整体拷贝，调用方可以安全地从Initial()派生出互不干扰的状态副本。
type State struct {
	P [PWords]uint32
	S [SBoxCount][SWords]uint32
}

// Initial 返回pi常量导出的标准Blowfish初始状态的一份拷贝。
// 每次bcrypt调用都应该从这里重新取得状态，绝不能在多次调用间
// 共享同一个可变State。
func Initial() State {
	var st State
	st.P = internal.PBox
	st.S[0] = internal.SBox0
	st.S[1] = internal.SBox1
	st.S[2] = internal.SBox2
	st.S[3] = internal.SBox3
	return st
}

// f 是Blowfish的F函数：把32位输入按大端拆成4个字节，
// 分别查4个S盒，再按((S0+S1)^S2)+S3的顺序组合。
func (st *State) f(x uint32) uint32 {
	b0 := byte(x >> 24)
	b1 := byte(x >> 16)
	b2 := byte(x >> 8)
	b3 := byte(x)

	return (st.S[0][b0]+st.S[1][b1])^st.S[2][b2] + st.S[3][b3]
}

// Encipher 对一个64位分组(l, r)运行16轮Feistel网络，并在最后应用
// 与P[16]/P[17]的XOR。返回值是交换过的(r, l)对——这是bcrypt规范的
// 一部分，历史上有不止一个bcrypt移植在这里弄反过。
func (st *State) Encipher(l, r uint32) (uint32, uint32) {
	for i := 0; i < Rounds; i += 2 {
		l ^= st.P[i]
		r ^= st.f(l)
		r ^= st.P[i+1]
		l ^= st.f(r)
	}

	l ^= st.P[PWords-2]
	r ^= st.P[PWords-1]

	return r, l
}
