// Package connectors holds the remote storage connectors. Each connector
// implements driven.StorageConnector: it authenticates against a storage
// service and yields a driven.StorageClient that the upload service uses to
// find folders, create them and upload files.
//
// Google Drive is the only connector, under google/drive.
package connectors
