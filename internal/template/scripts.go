package template

import (
	"bytes"
)

func writeScripts(buf *bytes.Buffer) {
	buf.WriteString(`  <script>
    // Accordion: toggle in place instead of following the header link
    (function() {
      var accordions = document.querySelectorAll('.mz-accordion');
      if (!accordions.length) return;

      // Seed from the rendered markup. The query may name keys the server
      // dropped, and a static export ignores it entirely.
      var open = {};
      accordions.forEach(function(acc) {
        if (acc.getAttribute('data-expanded') === 'true') {
          open[acc.getAttribute('data-key')] = true;
        }
      });

      function query(state) {
        var keys = Object.keys(state).sort();
        if (!keys.length) return '';
        return '?' + keys.map(function(k) { return 'open=' + encodeURIComponent(k); }).join('&');
      }

      function flipped(key) {
        var next = {};
        Object.keys(open).forEach(function(k) { next[k] = true; });
        if (next[key]) delete next[key]; else next[key] = true;
        return next;
      }

      function updateLinks() {
        accordions.forEach(function(acc) {
          var key = acc.getAttribute('data-key');
          var header = acc.querySelector('.mz-accordion-header');
          header.setAttribute('href', window.location.pathname + query(flipped(key)) + '#' + acc.id);
        });
      }

      function buildPanel(acc) {
        var features = [];
        try {
          features = JSON.parse(acc.getAttribute('data-features') || '[]');
        } catch (e) {}

        var panel = document.createElement('div');
        panel.className = 'mz-accordion-panel';
        panel.id = acc.id + '-features';
        var list = document.createElement('ul');
        list.className = 'mz-features';
        features.forEach(function(f) {
          var li = document.createElement('li');
          var dash = document.createElement('span');
          dash.className = 'mz-feature-dash';
          dash.setAttribute('aria-hidden', 'true');
          dash.textContent = '—';
          var text = document.createElement('span');
          text.textContent = f;
          li.appendChild(dash);
          li.appendChild(text);
          list.appendChild(li);
        });
        panel.appendChild(list);
        return panel;
      }

      function toggle(acc) {
        var key = acc.getAttribute('data-key');
        var header = acc.querySelector('.mz-accordion-header');
        var glyph = acc.querySelector('.mz-accordion-glyph');
        var panel = acc.querySelector('.mz-accordion-panel');

        if (acc.getAttribute('data-expanded') === 'true') {
          if (panel) panel.remove();
          acc.setAttribute('data-expanded', 'false');
          header.setAttribute('aria-expanded', 'false');
          glyph.textContent = '+';
          delete open[key];
        } else {
          acc.appendChild(buildPanel(acc));
          acc.setAttribute('data-expanded', 'true');
          header.setAttribute('aria-expanded', 'true');
          glyph.textContent = '−';
          open[key] = true;
        }

        var q = query(open);
        document.documentElement.setAttribute('data-accordion-state', q.replace(/^\?/, ''));
        if (window.history && window.history.replaceState) {
          window.history.replaceState(null, '', window.location.pathname + q);
        }
        updateLinks();
      }

      accordions.forEach(function(acc) {
        var header = acc.querySelector('.mz-accordion-header');
        if (!header) return;
        header.addEventListener('click', function(e) {
          e.preventDefault();
          toggle(acc);
        });
        header.addEventListener('keydown', function(e) {
          if (e.key === ' ' || e.key === 'Spacebar') {
            e.preventDefault();
            toggle(acc);
          }
        });
      });
      updateLinks();
    })();
  </script>
`)
}
