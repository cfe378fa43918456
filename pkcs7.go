package pe

import (
	"crypto"
	"crypto/x509/pkix"
	"encoding/asn1"
	"time"

	"github.com/Velocidex/pkcs7"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// ASN.1 structures embedded in Authenticode signed data.

type SpcPeImageData struct {
	Flags asn1.BitString
	File  asn1.RawValue
}

type SpcAttributeTypeAndOptionalValue struct {
	Type  asn1.ObjectIdentifier
	Value SpcPeImageData `asn1:"tag:2,optional"`
}

type DigestInfo struct {
	DigestAlgorithm pkix.AlgorithmIdentifier
	Digest          []byte
}

type SpcIndirectDataContent struct {
	Data          SpcAttributeTypeAndOptionalValue
	MessageDigest DigestInfo
}

func parseIndirectData(signature *pkcs7.PKCS7) (*SpcIndirectDataContent, error) {
	var indirect_data SpcIndirectDataContent
	_, err := asn1.Unmarshal(
		signature.SignedData.ContentInfo.Content.Bytes, &indirect_data)
	if err != nil {
		return nil, errors.Wrap(err, "SpcIndirectDataContent")
	}

	return &indirect_data, nil
}

type spcSpOpusInfo struct {
	ProgramName asn1.RawValue `asn1:"explicit,optional,tag:0"`
	MoreInfo    asn1.RawValue `asn1:"explicit,optional,tag:1"`
}

type SpcSpOpusInfo struct {
	ProgramName string
	MoreInfo    string
}

func UTF16ToString(in []byte) string {
	decoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	utf8, err := decoder.Bytes(in)
	if err != nil {
		return string(in)
	}
	return string(utf8)
}

// SpcString is a choice of BMPString or IA5String. Which one is used
// is not very consistent in practice so we guess.
func decodeSpcString(value asn1.RawValue) string {
	var result asn1.RawValue
	_, err := asn1.Unmarshal(value.Bytes, &result)
	if err != nil {
		return ""
	}

	if len(result.Bytes) > 0 && len(result.Bytes)%2 == 0 && result.Bytes[0] == 0 {
		return UTF16ToString(result.Bytes)
	}
	return string(result.Bytes)
}

func parseSpcSpOpusInfo(bytes []byte) *SpcSpOpusInfo {
	var data spcSpOpusInfo
	_, err := asn1.Unmarshal(bytes, &data)
	if err != nil {
		return nil
	}

	return &SpcSpOpusInfo{
		ProgramName: decodeSpcString(data.ProgramName),
		MoreInfo:    decodeSpcString(data.MoreInfo),
	}
}

func getHashForOID(oid asn1.ObjectIdentifier) (crypto.Hash, string, error) {
	switch {
	case oid.Equal(pkcs7.OIDDigestAlgorithmSHA1),
		oid.Equal(pkcs7.OIDDigestAlgorithmECDSASHA1),
		oid.Equal(pkcs7.OIDDigestAlgorithmDSA),
		oid.Equal(pkcs7.OIDDigestAlgorithmDSASHA1),
		oid.Equal(pkcs7.OIDEncryptionAlgorithmRSA):
		return crypto.SHA1, "SHA1", nil
	case oid.Equal(pkcs7.OIDDigestAlgorithmSHA256),
		oid.Equal(pkcs7.OIDDigestAlgorithmECDSASHA256):
		return crypto.SHA256, "SHA256", nil
	case oid.Equal(pkcs7.OIDDigestAlgorithmSHA384),
		oid.Equal(pkcs7.OIDDigestAlgorithmECDSASHA384):
		return crypto.SHA384, "SHA384", nil
	case oid.Equal(pkcs7.OIDDigestAlgorithmSHA512),
		oid.Equal(pkcs7.OIDDigestAlgorithmECDSASHA512):
		return crypto.SHA512, "SHA512", nil
	}
	return crypto.Hash(0), "Unknown", errors.Errorf("Unsupported digest %v", oid)
}

func parseTimestamp(bytes []byte) *time.Time {
	var result time.Time
	_, err := asn1.Unmarshal(bytes, &result)
	if err == nil {
		return &result
	}
	return nil
}

func parseMessageDigest(bytes []byte) []byte {
	var result []byte
	asn1.Unmarshal(bytes, &result)
	return result
}

func parseCounterSignature(bytes []byte) *pkcs7.SignerInfo {
	var result pkcs7.SignerInfo
	_, err := asn1.Unmarshal(bytes, &result)
	if err == nil {
		return &result
	}
	return nil
}

func getContentTypeString(bytes []byte) string {
	var oid asn1.ObjectIdentifier
	asn1.Unmarshal(bytes, &oid)

	switch {
	case oid.Equal(OIDIndirectData):
		return "SPC Indirect Data"
	case oid.Equal(oidCertificateTrustList):
		return "Certificate Trust List"
	default:
		return oid.String()
	}
}
