package message

import (
	"testing"

	"github.com/yzcpleo/szse-v5-parser/errs"
	"github.com/stretchr/testify/require"
)

func TestChannelHeartbeatRoundTrip(t *testing.T) {
	m := NewChannelHeartbeat()
	m.ChannelNo.SetValue(7)
	m.ApplLastSeqNum.SetValue(100001)
	m.EndOfChannel.SetValue(true)

	require.Equal(t, 12, m.WireSize())

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewChannelHeartbeat()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, uint16(7), decoded.ChannelNo.Value())
	require.Equal(t, int64(100001), decoded.ApplLastSeqNum.Value())
	require.True(t, decoded.EndOfChannel.Value())
}

func TestAnnouncementRoundTrip(t *testing.T) {
	m := NewAnnouncement()
	m.OrigTime.SetValue(20260729093000123)
	m.ChannelNo.SetValue(3)
	require.NoError(t, m.NewsID.SetValue("N0001"))
	require.NoError(t, m.Headline.SetValue("Interim Report"))
	require.NoError(t, m.RawDataFormat.SetValue("text"))
	m.RawData = []byte("this is the announcement body")

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))
	require.Equal(t, uint32(len(m.RawData)), m.RawDataLength.Value())

	decoded := NewAnnouncement()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, "N0001", decoded.NewsID.TrimmedValue())
	require.Equal(t, "Interim Report", decoded.Headline.TrimmedValue())
	require.Equal(t, m.RawData, decoded.RawData)
}

func TestAnnouncementEncodeBufferTooSmall(t *testing.T) {
	m := NewAnnouncement()
	m.RawData = []byte("overflow")

	buf := make([]byte, m.WireSize()-1)
	require.ErrorIs(t, m.EncodeBody(buf), errs.ErrBufferTooSmall)
}

func TestAnnouncementDecodeTruncatedRawData(t *testing.T) {
	m := NewAnnouncement()
	m.RawData = []byte("complete body")

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewAnnouncement()
	require.ErrorIs(t, decoded.DecodeBody(buf[:len(buf)-1]), errs.ErrTruncated)
}

func TestReTransmitRoundTrip(t *testing.T) {
	m := NewReTransmit()
	m.ResendType.SetValue(uint8(ResendTypeTickData))
	m.ChannelNo.SetValue(12)
	m.ApplBegSeqNum.SetValue(1000)
	m.ApplEndSeqNum.SetValue(2000)
	require.NoError(t, m.NewsID.SetValue("000001"))
	m.ResendStatus.SetValue(uint8(ResendStatusComplete))
	require.NoError(t, m.RejectText.SetValue("ok"))

	buf := make([]byte, m.WireSize())
	require.NoError(t, m.EncodeBody(buf))

	decoded := NewReTransmit()
	require.NoError(t, decoded.DecodeBody(buf))
	require.Equal(t, ResendType(decoded.ResendType.Value()), ResendTypeTickData)
	require.Equal(t, int64(1000), decoded.ApplBegSeqNum.Value())
	require.Equal(t, int64(2000), decoded.ApplEndSeqNum.Value())
	require.Equal(t, "000001", decoded.NewsID.TrimmedValue())
	require.Equal(t, ResendStatus(decoded.ResendStatus.Value()), ResendStatusComplete)
}
