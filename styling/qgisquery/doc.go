// Package qgisquery models filter expressions over vector tile feature
// attributes and renders them as QGIS expression strings.
package qgisquery
