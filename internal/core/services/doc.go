// Package services implements the core application logic behind the
// driving ports: the ingestion pipeline that turns component photos
// into inventory records, the query service over the store, and the
// directory watcher for continuous ingestion.
package services
