package pe

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"strings"

	"github.com/Velocidex/ordereddict"
	"github.com/Velocidex/pkcs7"
)

var (
	oidEmailAddress = []int{1, 2, 840, 113549, 1, 9, 1}

	oidSoftwarePublisher = []int{1, 3, 6, 1, 4, 1, 6449, 1, 2, 1, 3, 2}
	oidCodeSigning       = []int{2, 23, 140, 1, 4, 1}
	oidAnyPolicy         = []int{2, 5, 29, 32, 0}
	oidTimestampCert     = []int{1, 3, 6, 1, 4, 1, 6449, 1, 2, 1, 3, 8}

	oidContentType              = []int{1, 2, 840, 113549, 1, 9, 3}
	oidSigningTime              = []int{1, 2, 840, 113549, 1, 9, 5}
	oidSPC_STATEMENT_TYPE_OBJID = []int{1, 3, 6, 1, 4, 1, 311, 2, 1, 11}
	oidMessageDigest            = []int{1, 2, 840, 113549, 1, 9, 4}
	oidSPC_SP_OPUS_INFO_OBJID   = []int{1, 3, 6, 1, 4, 1, 311, 2, 1, 12}

	oidCertificateTrustList = []int{1, 3, 6, 1, 4, 1, 311, 10, 1}

	// Reference https://datatracker.ietf.org/doc/html/rfc2315
	OIDIndirectData     = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 311, 2, 1, 4}
	OIDCounterSignature = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 6}
)

// Builds a Dict describing a certificate table entry: who signed it,
// which certificates it carries and the image hash it claims. None of
// it is verified.
func PKCS7ToOrderedDict(self *pkcs7.PKCS7) *ordereddict.Dict {
	certificates := make([]*ordereddict.Dict, 0, len(self.Certificates))
	for _, cert := range self.Certificates {
		certificates = append(certificates, X509ToOrderedDict(cert))
	}

	result := ordereddict.NewDict().
		Set("Signer", getSigner(self)).
		Set("Certificates", certificates)

	if self.SignedData.ContentInfo.ContentType.Equal(OIDIndirectData) {
		indirect_data, err := parseIndirectData(self)
		if err == nil {
			_, hash, _ := getHashForOID(
				indirect_data.MessageDigest.DigestAlgorithm.Algorithm)
			result.Set("HashType", hash).
				Set("ExpectedHashHex", fmt.Sprintf("%x",
					indirect_data.MessageDigest.Digest))
		}
	}

	return result
}

// Authenticode has a single signer. Its serial number refers to one
// of the certificates carried in the same structure.
func getSigner(self *pkcs7.PKCS7) *ordereddict.Dict {
	if len(self.Signers) == 0 {
		return nil
	}

	signer_info := self.Signers[0]
	signer := getSignerInfo(&signer_info)
	if signer == nil {
		return nil
	}

	serial_number := signer_info.IssuerAndSerialNumber.SerialNumber
	for _, cert := range self.Certificates {
		if serial_number != nil && cert.SerialNumber != nil &&
			cert.SerialNumber.Cmp(serial_number) == 0 {
			signer.Set("Subject", getNamesString(cert.Subject.Names))
			break
		}
	}
	return signer
}

func getSignerInfo(signer_info *pkcs7.SignerInfo) *ordereddict.Dict {
	if signer_info == nil {
		return nil
	}

	var issuer pkix.RDNSequence
	_, err := asn1.Unmarshal(
		signer_info.IssuerAndSerialNumber.IssuerName.FullBytes, &issuer)
	if err != nil {
		Debug(err)
		return nil
	}

	var names []pkix.AttributeTypeAndValue
	for _, rdn := range issuer {
		names = append(names, rdn...)
	}

	_, hash_name, _ := getHashForOID(signer_info.DigestAlgorithm.Algorithm)

	signer := ordereddict.NewDict().
		Set("IssuerName", getNamesString(names)).
		Set("SerialNumber", fmt.Sprintf("%x",
			signer_info.IssuerAndSerialNumber.SerialNumber)).
		Set("DigestAlgorithm", hash_name)

	authenticated := ordereddict.NewDict()
	for _, attr := range signer_info.AuthenticatedAttributes {
		switch {
		case attr.Type.Equal(oidSPC_SP_OPUS_INFO_OBJID):
			program_info := parseSpcSpOpusInfo(attr.Value.Bytes)
			if program_info != nil {
				authenticated.
					Set("ProgramName", program_info.ProgramName).
					Set("MoreInfo", program_info.MoreInfo)
			}

		case attr.Type.Equal(oidSPC_STATEMENT_TYPE_OBJID):

		case attr.Type.Equal(oidSigningTime):
			authenticated.Set("SigningTime", parseTimestamp(attr.Value.Bytes))

		case attr.Type.Equal(oidMessageDigest):
			authenticated.Set("MessageDigestHex",
				fmt.Sprintf("%x", parseMessageDigest(attr.Value.Bytes)))

		case attr.Type.Equal(oidContentType):
			authenticated.Set("ContentType",
				getContentTypeString(attr.Value.Bytes))

		default:
			authenticated.Set(fmt.Sprintf("Oid: %v", attr.Type), "Unknown")
		}
	}
	signer.Set("AuthenticatedAttributes", authenticated)

	unauthenticated := ordereddict.NewDict()
	for _, attr := range signer_info.UnauthenticatedAttributes {
		if attr.Type.Equal(OIDCounterSignature) {
			unauthenticated.Set("CounterSignature",
				getSignerInfo(parseCounterSignature(attr.Value.Bytes)))
		}
	}
	signer.Set("UnauthenticatedAttributes", unauthenticated)

	return signer
}

func X509ToOrderedDict(cert *x509.Certificate) *ordereddict.Dict {
	policies := make([]string, 0, len(cert.PolicyIdentifiers))
	for _, pol := range cert.PolicyIdentifiers {
		policies = append(policies, getPolicyName(pol))
	}

	return ordereddict.NewDict().
		Set("SerialNumber", fmt.Sprintf("%x", cert.SerialNumber)).
		Set("SignatureAlgorithm", cert.SignatureAlgorithm.String()).
		Set("Subject", getNamesString(cert.Subject.Names)).
		Set("Issuer", getNamesString(cert.Issuer.Names)).
		Set("NotBefore", cert.NotBefore).
		Set("NotAfter", cert.NotAfter).
		Set("PublicKey", describePublicKey(cert)).
		Set("IsCA", cert.IsCA).
		Set("KeyUsage", keyUsages(cert.KeyUsage)).
		Set("ExtKeyUsage", extKeyUsages(cert.ExtKeyUsage)).
		Set("Policies", policies)
}

func describePublicKey(cert *x509.Certificate) string {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("RSA (%d bit)", key.N.BitLen())
	case *ecdsa.PublicKey:
		return fmt.Sprintf("ECDSA %s", key.Params().Name)
	}
	return cert.PublicKeyAlgorithm.String()
}

// keyUsage: RFC 5280, 4.2.1.3
var keyUsageNames = []struct {
	usage x509.KeyUsage
	name  string
}{
	{x509.KeyUsageDigitalSignature, "Digital Signature"},
	{x509.KeyUsageContentCommitment, "Content Commitment"},
	{x509.KeyUsageKeyEncipherment, "Key Encipherment"},
	{x509.KeyUsageDataEncipherment, "Data Encipherment"},
	{x509.KeyUsageKeyAgreement, "Key Agreement"},
	{x509.KeyUsageCertSign, "Certificate Sign"},
	{x509.KeyUsageCRLSign, "CRL Sign"},
	{x509.KeyUsageEncipherOnly, "Encipher Only"},
	{x509.KeyUsageDecipherOnly, "Decipher Only"},
}

func keyUsages(usage x509.KeyUsage) []string {
	result := []string{}
	for _, item := range keyUsageNames {
		if usage&item.usage > 0 {
			result = append(result, item.name)
		}
	}
	return result
}

// extKeyUsage: RFC 5280, 4.2.1.12
func extKeyUsages(usages []x509.ExtKeyUsage) []string {
	result := []string{}
	for _, val := range usages {
		switch val {
		case x509.ExtKeyUsageAny:
			result = append(result, "Any Usage")
		case x509.ExtKeyUsageCodeSigning:
			result = append(result, "Code Signing")
		case x509.ExtKeyUsageTimeStamping:
			result = append(result, "Time Stamping")
		case x509.ExtKeyUsageServerAuth:
			result = append(result, "TLS Web Server Authentication")
		case x509.ExtKeyUsageClientAuth:
			result = append(result, "TLS Web Client Authentication")
		case x509.ExtKeyUsageEmailProtection:
			result = append(result, "E-mail Protection")
		default:
			result = append(result, "UNKNOWN")
		}
	}
	return result
}

var nameAttributes = map[int]string{
	3:  "CN",
	5:  "SN",
	6:  "C",
	7:  "L",
	8:  "ST",
	9:  "street",
	10: "O",
	11: "OU",
	17: "postalCode",
}

func getNamesString(names []pkix.AttributeTypeAndValue) string {
	var values []string

	for _, name := range names {
		oid := name.Type
		if len(oid) == 4 && oid[0] == 2 && oid[1] == 5 && oid[2] == 4 {
			key, pres := nameAttributes[oid[3]]
			if pres {
				values = append(values, fmt.Sprintf("%s=%v", key, name.Value))
				continue
			}

		} else if oid.Equal(oidEmailAddress) {
			values = append(values, fmt.Sprintf("emailAddress=%v", name.Value))
			continue
		}

		values = append(values, fmt.Sprintf("UnknownOID=%s", oid.String()))
	}
	return strings.Join(values, ", ")
}

func getPolicyName(pol asn1.ObjectIdentifier) string {
	switch {
	case pol.Equal(oidSoftwarePublisher):
		return fmt.Sprintf("Software Publisher (%v)", pol)

	case pol.Equal(oidCodeSigning):
		return fmt.Sprintf("Code Signing (%v)", pol)

	case pol.Equal(oidAnyPolicy):
		return fmt.Sprintf("Any Policy (%v)", pol)

	case pol.Equal(oidTimestampCert):
		return fmt.Sprintf("Timestamping Certificate (%v)", pol)

	default:
		return pol.String()
	}
}
