package xml

import (
	"encoding/xml"
	"fmt"
	"io"

	smithy "github.com/aws/smithy-marshal"
)

// GetResponseErrorCode returns the error code from an xml error response
// body, read with the layout of the given error unmarshaller.
func GetResponseErrorCode(r io.Reader, u smithy.ErrorUnmarshaller) (string, error) {
	rb, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	switch u {
	case smithy.ErrorUnmarshallerLegacy:
		var errResponse legacyErrorResponse
		if err := xml.Unmarshal(rb, &errResponse); err != nil {
			return "", fmt.Errorf("error while fetching xml error response code: %w", err)
		}
		return errResponse.Errors.Err.Code, nil

	case smithy.ErrorUnmarshallerStandard:
		var errResponse errorResponse
		if err := xml.Unmarshal(rb, &errResponse); err != nil {
			return "", fmt.Errorf("error while fetching xml error response code: %w", err)
		}
		return errResponse.Err.Code, nil

	default:
		return "", fmt.Errorf("no xml error unmarshaller for %q", u.String())
	}
}

// errorResponse represents the standard error response body
// i.e. <ErrorResponse><Error>...</Error></ErrorResponse>
type errorResponse struct {
	Err errorBody `xml:"Error"`
}

// legacyErrorResponse represents the EC2 error response body
// i.e. <Response><Errors><Error>...</Error></Errors></Response>
type legacyErrorResponse struct {
	Errors struct {
		Err errorBody `xml:"Error"`
	} `xml:"Errors"`
}

// errorBody represents the inner <Error>...</Error> element.
type errorBody struct {
	Code string `xml:"Code"`
}
