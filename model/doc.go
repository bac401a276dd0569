// Package model loads AWS service model documents and turns them into the
// operation metadata and shape schemas the marshallers consume.
//
// Models are read with a YAML decoder, so both the JSON documents AWS
// publishes and hand-written YAML equivalents are accepted:
//
//	metadata:
//	  protocol: query
//	  apiVersion: "2014-10-31"
//	operations:
//	  ModifyDBSubnetGroup:
//	    http: {method: POST, requestUri: /}
//	    input: {shape: ModifyDBSubnetGroupMessage}
//	shapes:
//	  ModifyDBSubnetGroupMessage:
//	    type: structure
//	    members:
//	      DBSubnetGroupName: {shape: String}
//
// Structure members keep the order they are declared in.
package model
