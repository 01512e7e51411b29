// Package open5e implements the reference catalog over the public Open5e
// REST API (https://api.open5e.com).
//
// Every domain maps to one list endpoint. Responses are throttled with a
// token bucket, retried on 429 and 5xx, and kept in an in-process LRU keyed
// by request URL so repeated lookups within the TTL never touch the network.
package open5e
