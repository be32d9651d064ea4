// Package bcrypt 实现bcrypt口令哈希原语：给定一个短密钥(口令)、一个
// 16字节的盐和一个工作因子，产生一个刻意计算代价很高的23字节输出。
// 本包只负责核心算法——把结果编码成"$2b$..."这样的文本格式、生成
// 随机盐、常数时间的口令比较，以及任何命令行/FFI外壳，都是上层
// 调用者的事，不在这里实现。
package bcrypt

import (
	"encoding/binary"
	"errors"

	"github.com/eksblf/ekscrypt/blowfish"
	"github.com/eksblf/ekscrypt/eksblowfish"
)

const (
	// KeySizeMax 是bcrypt密钥允许的最大字节数。
	KeySizeMax = 72
	// SaltSize 是bcrypt盐的字节数。
	SaltSize = 16
	// HashSize 是bcrypt哈希输出的字节数。
	HashSize = 23
)

// 错误分类只有两种：长度超限和密钥中含有0字节。两个条件同时成立时
// 报告ErrLength，检查顺序与spec保持一致。
var (
	// ErrLength 表示密钥长度超过了KeySizeMax。
	ErrLength = errors.New("bcrypt: key exceeds 72 bytes")
	// ErrZeroByte 表示密钥中含有至少一个0x00字节。
	ErrZeroByte = errors.New("bcrypt: key contains a zero byte")
)

// message 是bcrypt固定的24字节ASCII常量"OrpheanBeholderScryDoubt"，
// 重新解释为六个大端32位字，三对分别对应三个64位分组。
var message = [6]uint32{
	0x4f727068, // "Orph"
	0x65616e42, // "eanB"
	0x65686f6c, // "ehol"
	0x64657253, // "derS"
	0x63727944, // "cryD"
	0x6f756274, // "oubt"
}

// Salt 是一个16字节的bcrypt盐，内部按四个大端32位字持有。
type Salt struct {
	words [4]uint32
}

// SaltFromBytes 从任意16字节构造一个盐。这个转换是全函数且双射的：
// Salt.Bytes(SaltFromBytes(b)) == b对任意b成立。
func SaltFromBytes(b [SaltSize]byte) Salt {
	var s Salt
	for i := range s.words {
		s.words[i] = binary.BigEndian.Uint32(b[4*i : 4*i+4])
	}
	return s
}

// Bytes 返回构成这个盐的16个字节。
func (s Salt) Bytes() [SaltSize]byte {
	var b [SaltSize]byte
	for i, w := range s.words {
		binary.BigEndian.PutUint32(b[4*i:4*i+4], w)
	}
	return b
}

// WorkFactor 是一个[4, 31]区间内的工作因子，代表2^cost轮EksBlowfish
// 密钥编排。这个区间之外的值不可表示——Exp是唯一的构造入口，因此
// bcrypt.Hash永远不会收到越界的cost。
type WorkFactor struct {
	logRounds uint32
}

// Exp 从一个典型的以2为底的指数(4到31，含两端)构造一个工作因子。
// 轮数是2^logRounds。指数越界时返回(WorkFactor{}, false)。
func Exp(logRounds uint32) (WorkFactor, bool) {
	if logRounds < 4 || logRounds > 31 {
		return WorkFactor{}, false
	}
	return WorkFactor{logRounds: logRounds}, true
}

// LogRounds 返回这个工作因子所代表轮数的以2为底的对数。
func (w WorkFactor) LogRounds() uint32 {
	return w.logRounds
}

// LinearRounds 返回这个工作因子所代表的轮数，即2^LogRounds()。
// cost=31时这个值是2^31，必须用无符号32位整数持有，有符号计数器
// 在这里会溢出。
func (w WorkFactor) LinearRounds() uint32 {
	return uint32(1) << w.logRounds
}

// Hash 用bcrypt对一个密钥和盐按工作因子做哈希。密钥长度不能超过
// KeySizeMax字节，也不能含有0x00字节；空密钥是合法的，产生的是对
// 全零密钥流的确定性哈希，而不是错误。
func Hash(key []byte, salt Salt, wf WorkFactor) ([HashSize]byte, error) {
	var zero [HashSize]byte

	if len(key) > KeySizeMax {
		return zero, ErrLength
	}
	for _, b := range key {
		if b == 0 {
			return zero, ErrZeroByte
		}
	}

	st := blowfish.Initial()

	eksblowfish.ExpandKey(&st, key)
	eksblowfish.ExpandData(&st, salt.words)

	rounds := wf.LinearRounds()
	for i := uint32(0); i < rounds; i++ {
		eksblowfish.ExpandKey(&st, key)
		eksblowfish.ExpandData0(&st)

		for j := range st.P {
			st.P[j] ^= salt.words[j%4]
		}

		eksblowfish.ExpandData0(&st)
	}

	c := message
	for round := 0; round < 64; round++ {
		for i := 0; i < len(c); i += 2 {
			c[i], c[i+1] = st.Encipher(c[i], c[i+1])
		}
	}

	var out [HashSize]byte
	for i := 0; i < 5; i++ {
		binary.BigEndian.PutUint32(out[4*i:4*i+4], c[i])
	}

	var last [4]byte
	binary.BigEndian.PutUint32(last[:], c[5])
	copy(out[20:23], last[:3])

	return out, nil
}
