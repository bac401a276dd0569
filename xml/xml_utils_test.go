package xml

import (
	"bytes"
	"io"
	"testing"

	smithy "github.com/aws/smithy-marshal"
)

func TestGetResponseErrorCode(t *testing.T) {
	cases := map[string]struct {
		errorResponse     io.Reader
		unmarshaller      smithy.ErrorUnmarshaller
		expectedErrorCode string
		expectErr         bool
	}{
		"standard": {
			errorResponse: bytes.NewReader([]byte(`<ErrorResponse>
    <Error>
        <Type>Sender</Type>
        <Code>InvalidGreeting</Code>
        <Message>Hi</Message>
        <AnotherSetting>setting</AnotherSetting>
    </Error>
    <RequestId>foo-id</RequestId>
</ErrorResponse>`)),
			unmarshaller:      smithy.ErrorUnmarshallerStandard,
			expectedErrorCode: "InvalidGreeting",
		},
		"legacy": {
			errorResponse: bytes.NewReader([]byte(`<Response>
    <Errors>
        <Error>
            <Code>InvalidSubnetID.NotFound</Code>
            <Message>The subnet ID 'subnet-1' does not exist</Message>
        </Error>
    </Errors>
    <RequestID>foo-id</RequestID>
</Response>`)),
			unmarshaller:      smithy.ErrorUnmarshallerLegacy,
			expectedErrorCode: "InvalidSubnetID.NotFound",
		},
		"no unmarshaller": {
			errorResponse: bytes.NewReader([]byte(`{"__type":"InvalidGreeting"}`)),
			unmarshaller:  smithy.ErrorUnmarshallerNone,
			expectErr:     true,
		},
		"malformed": {
			errorResponse: bytes.NewReader([]byte(`<ErrorResponse><Error>`)),
			unmarshaller:  smithy.ErrorUnmarshallerStandard,
			expectErr:     true,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			errorcode, err := GetResponseErrorCode(c.errorResponse, c.unmarshaller)
			if c.expectErr {
				if err == nil {
					t.Fatalf("expected error, got code %q", errorcode)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if e, a := c.expectedErrorCode, errorcode; e != a {
				t.Fatalf("expected %v, got %v", e, a)
			}
		})
	}
}
