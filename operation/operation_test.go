package operation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	smithy "github.com/aws/smithy-marshal"
)

func TestBuild(t *testing.T) {
	cases := map[string]struct {
		Service *ServiceMetadata
		Op      *Operation
		Expect  *Descriptor
	}{
		"query operation ignores nothing": {
			Service: &ServiceMetadata{
				APIVersion:   "2014-10-31",
				Protocol:     smithy.ProtocolQuery,
				TargetPrefix: "AmazonDocDB",
			},
			Op: &Operation{
				Name: "ModifyDBSubnetGroup",
				HTTP: HTTP{Method: "POST", RequestURI: "/"},
				Input: &Input{
					Shape:        "ModifyDBSubnetGroupMessage",
					LocationName: "ModifyDBSubnetGroupRequest",
				},
			},
			Expect: &Descriptor{
				Action:       "ModifyDBSubnetGroup",
				HTTPMethod:   "POST",
				RequestURI:   "/",
				LocationName: "ModifyDBSubnetGroupRequest",
				Target:       "AmazonDocDB.ModifyDBSubnetGroup",
			},
		},
		"namespace from input reference": {
			Service: &ServiceMetadata{Protocol: smithy.ProtocolRESTXML},
			Op: &Operation{
				Name: "PutBucketTagging",
				HTTP: HTTP{Method: "PUT", RequestURI: "/{Bucket}?tagging"},
				Input: &Input{
					Shape:        "PutBucketTaggingRequest",
					LocationName: "Tagging",
					XMLNamespace: &XMLNamespace{URI: "http://s3.amazonaws.com/doc/2006-03-01/"},
				},
			},
			Expect: &Descriptor{
				Action:          "PutBucketTagging",
				HTTPMethod:      "PUT",
				RequestURI:      "/{Bucket}?tagging",
				LocationName:    "Tagging",
				XMLNamespaceURI: "http://s3.amazonaws.com/doc/2006-03-01/",
			},
		},
		"input without location name or namespace": {
			Service: &ServiceMetadata{Protocol: smithy.ProtocolJSON, TargetPrefix: "DeviceFarm_20150623"},
			Op: &Operation{
				Name:  "ListTestGridSessionArtifacts",
				HTTP:  HTTP{Method: "POST", RequestURI: "/"},
				Input: &Input{Shape: "ListTestGridSessionArtifactsRequest"},
			},
			Expect: &Descriptor{
				Action:     "ListTestGridSessionArtifacts",
				HTTPMethod: "POST",
				RequestURI: "/",
				Target:     "DeviceFarm_20150623.ListTestGridSessionArtifacts",
			},
		},
		"no input reference": {
			Service: &ServiceMetadata{Protocol: smithy.ProtocolRESTJSON},
			Op: &Operation{
				Name: "DeleteSite",
				HTTP: HTTP{Method: "DELETE", RequestURI: "/global-networks/{globalNetworkId}/sites/{siteId}"},
			},
			Expect: &Descriptor{
				Action:     "DeleteSite",
				HTTPMethod: "DELETE",
				RequestURI: "/global-networks/{globalNetworkId}/sites/{siteId}",
			},
		},
		"nil service": {
			Op: &Operation{Name: "Ping", HTTP: HTTP{Method: "GET", RequestURI: "/ping"}},
			Expect: &Descriptor{
				Action:     "Ping",
				HTTPMethod: "GET",
				RequestURI: "/ping",
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := Build(c.Service, c.Op)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.Expect, actual); len(diff) != 0 {
				t.Errorf("descriptor mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestBuild_EmptyTargetPrefix(t *testing.T) {
	for _, name := range []string{"", "DescribeThings", "A.B"} {
		d, err := Build(&ServiceMetadata{Protocol: smithy.ProtocolJSON}, &Operation{Name: name})
		if err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
		if d.HasTarget() {
			t.Errorf("expect no target for %q, got %q", name, d.Target)
		}
	}
}

func TestBuild_MissingOperation(t *testing.T) {
	d, err := Build(&ServiceMetadata{TargetPrefix: "AmazonDocDB"}, nil)
	if d != nil {
		t.Errorf("expect no descriptor, got %+v", d)
	}

	var e *smithy.MissingOperationError
	if !errors.As(err, &e) {
		t.Fatalf("expect MissingOperationError, got %v", err)
	}
}
