// Package pix builds static PIX BR Code payloads (the EMV QR format used by
// Brazilian instant payments) for the mock payment panel.
package pix

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

type Charge struct {
	Key          string
	MerchantName string
	MerchantCity string
	Amount       float64
	TxID         string
}

// Payload assembles the copy-paste BR Code string, CRC included.
func (c Charge) Payload() string {
	txid := c.TxID
	if txid == "" {
		txid = "***"
	}

	var b strings.Builder
	b.WriteString(emv("00", "01"))
	b.WriteString(emv("26", emv("00", "br.gov.bcb.pix")+emv("01", c.Key)))
	b.WriteString(emv("52", "0000"))
	b.WriteString(emv("53", "986"))
	if c.Amount > 0 {
		b.WriteString(emv("54", fmt.Sprintf("%.2f", c.Amount)))
	}
	b.WriteString(emv("58", "BR"))
	b.WriteString(emv("59", truncate(c.MerchantName, 25)))
	b.WriteString(emv("60", truncate(c.MerchantCity, 15)))
	b.WriteString(emv("62", emv("05", txid)))

	payload := b.String() + "6304"
	return payload + fmt.Sprintf("%04X", crc16(payload))
}

// QRCodePNG renders the payload as a PNG of the given edge size in pixels.
func (c Charge) QRCodePNG(size int) ([]byte, error) {
	return qrcode.Encode(c.Payload(), qrcode.Medium, size)
}

// emv writes one EMV data object: two-digit id, two-digit length, value.
func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// crc16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), the checksum the
// BR Code spec mandates for field 63.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
